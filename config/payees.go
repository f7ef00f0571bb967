package config

import (
	"encoding/json"
	"log"
	"os"
)

// Payees maps an admin user ID to the payee name buyers select at
// checkout. An admin only sees payments addressed to their own name.
type Payees map[uint]string

func defaultPayees() Payees {
	return Payees{
		6:  "Mrigankar",
		14: "Venkat",
		15: "Unnati",
		16: "Pragya",
		17: "Sanat",
		18: "Suraj",
	}
}

// LoadPayees returns the payee mapping. A PAYEE_MAP env var containing a
// JSON object of {"adminId": "name"} replaces the built-in table wholesale.
func LoadPayees() Payees {
	raw := os.Getenv("PAYEE_MAP")
	if raw == "" {
		return defaultPayees()
	}

	var parsed map[uint]string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("❌ Invalid PAYEE_MAP, falling back to defaults: %v", err)
		return defaultPayees()
	}
	return Payees(parsed)
}
