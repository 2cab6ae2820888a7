// hash-password prints a bcrypt hash for OFFICE_ADMIN_PASSWORD_HASH.
//
// Usage:
//
//	go run ./cmd/hash-password -password 's3cret'
//	echo -n 's3cret' | go run ./cmd/hash-password
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"gestion_oficina/internal/infrastructure/security"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := flag.String("password", "", "plain password (read from stdin when empty)")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	plain := *password
	if plain == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "no password given: use -password or pipe it on stdin")
			os.Exit(2)
		}
		plain = strings.TrimRight(line, "\r\n")
	}
	if plain == "" {
		fmt.Fprintln(os.Stderr, "password must not be empty")
		os.Exit(2)
	}

	hash, err := security.NewBcryptHasher(*cost).Hash(plain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
