// Command owner_hash prints the bcrypt hash to put in OWNER_PASSWORD_HASH.
//
//	go run ./cmd/owner_hash -password 'the owner password'
//
// Without -password the password is read from the first line of stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/shop_pos_app/internal/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	password := flag.String("password", "", "owner password to hash")
	flag.Parse()

	if *password == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logger.Error("Failed to read password from stdin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		*password = strings.TrimRight(line, "\r\n")
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(hash)
}
