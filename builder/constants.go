// Package builder defines shared constants used by the layout constructors,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGrid is the canonical name for the BuildGrid orchestrator.
	MethodBuildGrid = "BuildGrid"
	// MethodPredefined1 is the canonical name for the first fixed layout.
	MethodPredefined1 = "Predefined1"
	// MethodPredefined2 is the canonical name for the second fixed layout.
	MethodPredefined2 = "Predefined2"
	// MethodRandom is the canonical name for the RandomObstacles constructor.
	MethodRandom = "Random"
)

//-----------------------------------------------------------------------------
// Dimensions
//-----------------------------------------------------------------------------

// DefaultRows is the number of rows of every predefined layout and the
// default for Random.
const DefaultRows = 10

// DefaultCols is the number of columns of every predefined layout and the
// default for Random.
const DefaultCols = 10

// MinGridDim is the smallest allowed dimension (rows or cols).
const MinGridDim = 1

// MinRandomSpan is the smallest rows+cols for which Random can place two
// distinct endpoints at Manhattan distance ≥ (rows+cols)/2.
const MinRandomSpan = 4

//-----------------------------------------------------------------------------
// Random layout
//-----------------------------------------------------------------------------

// RandomObstacleWeight is the weight of every obstacle Random places.
const RandomObstacleWeight = 1

// defaultMaxAttempts bounds how many Random layouts may be discarded.
const defaultMaxAttempts = 64

// endTriesPerCell scales the number of End draws per attempt by grid size.
const endTriesPerCell = 4
