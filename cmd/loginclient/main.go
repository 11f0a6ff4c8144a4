package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"code_tutor/internal/client"
)

func main() {
	loginURL := flag.String("url", "http://localhost:8080/api/login", "login endpoint")
	username := flag.String("username", "user@example.com", "account email")
	password := flag.String("password", "password123", "account password")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := client.Login(ctx, *loginURL, *username, *password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "login: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("JWT token: " + result.Token)
}
