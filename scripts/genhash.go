package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	passwords := map[string]string{
		"peso_admin":    "ChangeMe!Admin2026",
		"demo_employer": "ChangeMe!Employer2026",
		"demo_seeker":   "ChangeMe!Seeker2026",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
