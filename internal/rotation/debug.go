package rotation

// Debug is the diagnostic sidecar the modules write into every pass. It has
// no effect on control flow; the server streams it so a user can see why the
// rotation did or did not act this tick. Each module owns its own fields and
// overwrites them on every evaluation.
type Debug struct {
	PlanningState string `json:"planningState"`
	RaiseState    string `json:"raiseState"`
	HealState     string `json:"healState"`
	CleanseState  string `json:"cleanseState"`
	RegenState    string `json:"regenState"`
	AoEStatus     string `json:"aoeStatus"`
	DefenseState  string `json:"defenseState"`
	BuffState     string `json:"buffState"`
	DpsState      string `json:"dpsState"`
	LilyCount     int    `json:"lilyCount"`
	LastAction    string `json:"lastAction"`
	ActionsUsed   int    `json:"actionsUsed"`
}
