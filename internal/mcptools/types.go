package mcptools

// DaysGridInput is the input schema for the days_grid MCP tool.
type DaysGridInput struct {
	Year     int    `json:"year" jsonschema-description:"Year between 1 and 9999"`
	Month    int    `json:"month" jsonschema-description:"Month number, 1 for January through 12 for December"`
	Selected string `json:"selected,omitempty" jsonschema-description:"Selected date as YYYY-MM-DD"`
	Locale   string `json:"locale,omitempty" jsonschema-description:"BCP 47 language tag for labels, e.g. en or de"`
}

// DaysGridOutput is the output schema for the days_grid MCP tool.
type DaysGridOutput struct {
	Header   string       `json:"header"`
	Weekdays []string     `json:"weekdays"`
	Cells    []CellResult `json:"cells"`
}

// CellResult is one day of a days_grid result.
type CellResult struct {
	Value   int    `json:"value"`
	Offset  int    `json:"offset"`
	Variant string `json:"variant"`
}

// ParseDateInput is the input schema for the parse_date MCP tool.
type ParseDateInput struct {
	Text string `json:"text" jsonschema-description:"Text to parse as YYYY-MM-DD"`
}

// ParseDateOutput is the output schema for the parse_date MCP tool.
type ParseDateOutput struct {
	Valid   bool   `json:"valid"`
	Date    string `json:"date,omitempty"`
	Weekday string `json:"weekday,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NavigateInput is the input schema for the navigate MCP tool.
type NavigateInput struct {
	View      string `json:"view" jsonschema-description:"Current view: days, months or years"`
	Anchor    string `json:"anchor" jsonschema-description:"Anchor date as YYYY-MM-DD"`
	Direction string `json:"direction" jsonschema-description:"One of next, prev, up or today"`
	Locale    string `json:"locale,omitempty" jsonschema-description:"BCP 47 language tag for the header"`
}

// NavigateOutput is the output schema for the navigate MCP tool.
type NavigateOutput struct {
	View   string `json:"view"`
	Anchor string `json:"anchor"`
	Header string `json:"header"`
}

// RecentPicksInput is the input schema for the recent_picks MCP tool.
type RecentPicksInput struct {
	Limit int `json:"limit" jsonschema-description:"Maximum number of picks to return"`
}

// RecentPicksOutput is the output schema for the recent_picks MCP tool.
type RecentPicksOutput struct {
	Picks []PickResult `json:"picks"`
}

// PickResult is the common output format for pick-related MCP tools.
type PickResult struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	PickedAt string `json:"picked_at"`
	Source   string `json:"source"`
}

// RecordPickInput is the input schema for the record_pick MCP tool.
type RecordPickInput struct {
	Date string `json:"date" jsonschema-description:"Date to record as YYYY-MM-DD"`
}

// RecordPickOutput is the output schema for the record_pick MCP tool.
type RecordPickOutput struct {
	Pick PickResult `json:"pick"`
}
