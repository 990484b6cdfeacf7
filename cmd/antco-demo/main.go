// Package main demonstrates the ant colony optimization engine against
// two small CSPs: n-queens and Sudoku.
package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gitrdm/antco/examples/nqueens"
	"github.com/gitrdm/antco/examples/sudoku"
	"github.com/gitrdm/antco/pkg/aco"
)

func main() {
	fmt.Println("=== Antco Examples ===")
	fmt.Println()

	eightQueens()
	easySudoku()
}

// eightQueens runs the engine against classic 8-queens.
func eightQueens() {
	fmt.Println("1. 8-Queens:")

	problem, rows, err := nqueens.Problem(8)
	if err != nil {
		fmt.Printf("   failed to build problem: %v\n", err)
		return
	}

	params, err := aco.NewParameters(2.0, 0.0, 0.05, 0.01, 6.0, 20)
	if err != nil {
		fmt.Printf("   invalid parameters: %v\n", err)
		return
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	colony, err := aco.NewColony(problem, params, aco.WithLogger(logger), aco.WithSeed(42))
	if err != nil {
		fmt.Printf("   failed to build colony: %v\n", err)
		return
	}

	solution, err := colony.Solve(200)
	if err != nil {
		fmt.Printf("   solve failed: %v\n", err)
		return
	}

	if problem.IsSolution(solution) {
		fmt.Println("   solved:")
	} else {
		fmt.Printf("   best effort: %d/%d queens placed\n", solution.Size(), problem.Size())
	}
	fmt.Println(nqueens.Render(8, rows, solution))
	fmt.Println()
}

// easySudoku runs the engine against a lightly-constrained 9x9 puzzle.
func easySudoku() {
	fmt.Println("2. Sudoku (easy):")

	problem, cells, err := sudoku.Problem(sudoku.EasyPuzzle())
	if err != nil {
		fmt.Printf("   failed to build problem: %v\n", err)
		return
	}

	params := aco.DefaultParameters()

	colony, err := aco.NewColony(problem, params, aco.WithSeed(7))
	if err != nil {
		fmt.Printf("   failed to build colony: %v\n", err)
		return
	}

	solution, err := colony.SolveParallel(context.Background(), 50)
	if err != nil {
		fmt.Printf("   solve failed: %v\n", err)
		return
	}

	if problem.IsSolution(solution) {
		fmt.Println("   solved:")
	} else {
		fmt.Printf("   best effort: %d/%d cells assigned\n", solution.Size(), problem.Size())
	}
	fmt.Println(sudoku.Render(cells, solution))
}
