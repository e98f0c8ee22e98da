// Package warekit is a compact teaching library for introductory AI:
// grid-world pathfinding, reactive agents, and local-search
// metaheuristics, all over a tiny warehouse world.
//
// 🚀 What is warekit?
//
//	A single-process, dependency-light playground that brings together:
//		• grid/        — the warehouse world: cells, walls, moves, episode dynamics
//		• search/      — Uniform Cost Search and A* with pluggable heuristics
//		• agent/       — reflex and greedy Manhattan agents + an episode runner
//		• layout/      — the rack-placement toy optimization problem
//		• localsearch/ — hill climbing, simulated annealing, genetic algorithm
//
// ✨ Why warekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – explicit tie-breaking and seeded randomness everywhere
//   - Pure algorithms – no goroutines inside a search, no hidden global state
//
// Every search or optimization call allocates its own working state and
// discards it on return; nothing is shared across invocations, so
// independent calls may safely run from different goroutines.
//
// Quick ASCII example of a warehouse map:
//
//	##########
//	#S...#...#
//	#.##.#.#.#
//	#.#..P.#.#
//	#...##.#D#
//	##########
//
// S is the robot start, P the pickup shelf, D the dropoff bay, # walls.
//
// See examples/ for runnable scenarios and cmd/warekit for the CLI.
//
//	go get github.com/warekit/warekit
package warekit
