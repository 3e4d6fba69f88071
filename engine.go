package dynwhere

import "strconv"

// Engine selects the placeholder syntax used by RenderArgs and Apply
type Engine int

const (
	EngineUnknown Engine = iota
	EngineMySQL
	EnginePostgreSQL
	EngineSQLite
)

func (e Engine) String() string {
	switch e {
	case EngineMySQL:
		return "MySQL Engine"
	case EnginePostgreSQL:
		return "PostgreSQL Engine"
	case EngineSQLite:
		return "SQLite Engine"
	default:
		return "Unknown Engine"
	}
}

func (e Engine) valid() bool {
	return e >= EngineMySQL && e <= EngineSQLite
}

// placeholder returns the placeholder for the nth (1-based) argument of a query
func (e Engine) placeholder(n int) string {
	if e == EnginePostgreSQL {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}
