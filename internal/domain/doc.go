// Package domain implements the context-tensor and risk-tessellation core.
//
// # Procedural Model
//
// The engine covers a region with hexagonal cells and synthesizes a
// multi-dimensional "context tensor" per cell (climate, geography,
// socioeconomic, infrastructure, and vulnerability records) entirely from
// deterministic functions of the cell's coordinates. When no authoritative
// data source is configured (the normal case), every value is a procedural
// approximation; the contract is determinism, not scientific accuracy.
//
// # Noise Fields
//
// Three independently seeded value-noise fields drive the synthesis:
//
//	terrain: elevation and water classification. Values below the water
//	         threshold mark a cell as Waterbody; the band just above it is
//	         coastal.
//	density: urbanization. Combined with the cell's normalized distance
//	         from the grid center and thresholded into Urban, Suburban,
//	         or Rural.
//	extreme: extreme-event propensity, blended with a latitude factor
//	         (tropical-cyclone belts sit at low absolute latitude).
//
// Each field is a four-octave fractal sum: every octave halves the amplitude
// and doubles the frequency of the previous one. Lattice points are hashed
// with an explicit 64-bit seed, so identical coordinates always produce
// bit-identical values on every platform; no global random state anywhere.
//
// # Risk Decomposition
//
// Composite risk follows the standard hazard x exposure x vulnerability
// decomposition. Hazard starts from a fixed baseline with fixed bonuses for
// water, urban land use, and the tropical temperature band; exposure is the
// mean of population density and infrastructure quality; vulnerability falls
// as infrastructure rises. Open-water cells get a fixed low override instead
// of the raw composite, since nothing lives on open water.
//
// # Totality
//
// Every function in this package is total over its input domain: unresolvable
// region names fall back to a default coordinate, unknown scales become
// "city", and provider failures fall back to procedural synthesis. An
// analysis request always yields a complete GridAnalysis.
package domain
