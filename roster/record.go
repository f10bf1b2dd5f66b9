package roster

// Record is one employee row mapped to named fields. Rebuilt from the sheet on
// every lookup; the roster is never cached.
type Record struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"employeeName"`
	Grade      string `json:"grade"`
	RIB        string `json:"rib"`
	Phone      string `json:"tel"`
	DiscordID  string `json:"discordId"`
	Email      string `json:"gmail"`
}
