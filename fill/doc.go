// Package fill implements the bounded Dijkstra expansion from a set of
// seed voxels, the merge of several fills' node stores by per-voxel
// minimum cost, and rasterisation of a store into mask/distance/
// intensity volumes.
//
// The expansion loop is the search package's unidirectional,
// undefined-goal mode generalized from a single seed to a set (the
// spec's Design Notes describe a fill as exactly this: "SearchKind::Dijkstra
// with defined_goal=false plus a post-processing merger"); it is kept as
// its own small loop here rather than routed through search.Engine
// because Engine's Config models one fixed origin per side, not an
// arbitrary seed set.
package fill
