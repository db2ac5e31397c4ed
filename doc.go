// Package wordlex picks optimal guesses for five-letter word games by
// maximizing the expected information gain of each guess over the words that
// can still be the answer.
//
// # Interactive use
//
//	solver, _ := wordlex.New()
//	ep := solver.NewEpisode()
//	guess, _ := ep.Suggest(ctx)             // "salet"
//	_ = ep.Fold(guess, wordlex.MustFeedback("ggyyx"))
//	guess, _ = ep.Suggest(ctx)              // next best guess
//
// # Simulation and benchmarking
//
//	solver, _ := wordlex.New(wordlex.WithHardMode())
//	out, _ := solver.Solve(ctx, "spark")    // plays a full episode
//	sum, _ := solver.Benchmark(ctx, wordlex.BenchOptions{Parallel: 8})
//	fmt.Println(sum)                        // solved 913/925 (98.7%), ...
package wordlex
