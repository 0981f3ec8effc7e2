// Command hashpw prints the argon2id hash to put in an operator's
// password_hash config entry. The password is read from stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"bank-ledger/internal/service"

	flag "github.com/spf13/pflag"
)

func main() {
	username := flag.StringP("username", "u", "", "operator username to print a config snippet for")
	flag.Parse()

	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && password == "" {
		fmt.Fprintf(os.Stderr, "reading password: %v\n", err)
		os.Exit(1)
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		fmt.Fprintln(os.Stderr, "empty password")
		os.Exit(1)
	}

	hash, err := service.NewArgon2HashService().Hash(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashing password: %v\n", err)
		os.Exit(1)
	}

	if *username == "" {
		fmt.Println(hash)
		return
	}
	fmt.Printf("operators:\n  - username: %s\n    password_hash: %q\n", *username, hash)
}
