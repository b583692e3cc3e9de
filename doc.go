// Package windgrid models a power grid under a uniform storm and answers one
// question: which lines should be reinforced so that the fewest substations
// lose supply.
//
// What is windgrid?
//
//	An in-memory engine plus two thin front ends:
//		• Core primitives: nodes, lines with wind thresholds and costs
//		• Failure model: a line survives iff wind < its effective threshold
//		• Connectivity: components, blackout zones, supply reach (BFS)
//		• Reinforcement: none, MST (Kruskal over union-find), greedy
//		• Loading: JSON/YAML definitions, bundled datasets, synthetic topologies
//		• Front ends: the windgrid CLI and the windgrid-web HTTP service
//
// Package layout:
//
//	core/          Graph, Edge, EdgeSet and sentinel errors
//	unionfind/     disjoint sets with path compression and union by rank
//	prim_kruskal/  minimum spanning forest used by the mst method
//	failure/       wind failure pass over an immutable graph
//	connectivity/  components, blackouts and supply feeds
//	bfs/           multi-source breadth-first walk
//	reinforce/     method selection and the parallel greedy search
//	simulation/    one end-to-end run with logging and metrics hooks
//	loader/        definitions, validation, datasets
//	builder/       deterministic synthetic grids
//	report/        result encoding and the text summary
//	metrics/       Prometheus collectors
//	logging/       slog construction from flags and LOG_LEVEL
//	web/           HTTP API, HTML form and SVG plot
//
// Quick ASCII example:
//
//	    A───B        the "example" dataset, plant at A.
//	    │ ╱ │        wind 7 cuts A─B (5), B─D (6) and C─D (3): B and C go dark.
//	    D───C        reinforcing A─B feeds them again.
//
// Run it:
//
//	go run ./cmd/windgrid -dataset example -wind 7 -method greedy -k 1
package windgrid
