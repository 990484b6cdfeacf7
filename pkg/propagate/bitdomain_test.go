package propagate

import "testing"

func TestBitDomainFullHasEverything(t *testing.T) {
	d := newFullBitDomain(5)
	if d.count() != 5 {
		t.Fatalf("count() = %d, want 5", d.count())
	}
	for i := 0; i < 5; i++ {
		if !d.has(i) {
			t.Fatalf("expected index %d to be present", i)
		}
	}
}

func TestBitDomainRemoveAndWipeout(t *testing.T) {
	d := newFullBitDomain(2)
	if wiped := d.remove(0); wiped {
		t.Fatal("removing one of two indices should not wipe the domain out")
	}
	if d.has(0) {
		t.Fatal("index 0 should have been removed")
	}
	if wiped := d.remove(1); !wiped {
		t.Fatal("removing the last remaining index should report wipeout")
	}
}

func TestBitDomainSingleton(t *testing.T) {
	d := newFullBitDomain(3)
	d.remove(0)
	d.remove(2)
	if !d.isSingleton() {
		t.Fatal("expected domain with one remaining index to be a singleton")
	}
	if d.singletonIndex() != 1 {
		t.Fatalf("singletonIndex() = %d, want 1", d.singletonIndex())
	}
}

func TestBitDomainIndicesAscending(t *testing.T) {
	d := newFullBitDomain(70) // exercises the two-word boundary at 64
	d.remove(0)
	d.remove(64)

	var got []int
	d.indices(func(i int) { got = append(got, i) })

	if len(got) != 68 {
		t.Fatalf("len(indices) = %d, want 68", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("indices not strictly ascending at position %d: %v", i, got)
		}
	}
}

func TestBitDomainCloneIsIndependent(t *testing.T) {
	d := newFullBitDomain(4)
	clone := d.clone()
	d.remove(0)
	if !clone.has(0) {
		t.Fatal("mutating the original must not affect the clone")
	}
}
