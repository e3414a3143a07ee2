// Copyright (C) 2025 Shufti Pro
//
// This file is part of sdk-go.
//
// sdk-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdk-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sdk-go.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shuftipro/sdk-go/pkg/client"
	"github.com/shuftipro/sdk-go/pkg/credentials"
	"github.com/shuftipro/sdk-go/pkg/protocol"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <reference>", os.Args[0])
	}
	ref := os.Args[1]

	creds := credentials.Credentials{
		ClientID:  os.Getenv("SHUFTIPRO_CLIENT_ID"),
		SecretKey: os.Getenv("SHUFTIPRO_SECRET_KEY"),
	}

	c, err := client.NewClient(creds)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := c.GetStatus(ctx, &protocol.StatusRequest{Reference: ref})
	if err != nil {
		log.Fatalf("Status lookup failed: %v", err)
	}

	fmt.Printf("Reference: %s\n", resp.Reference)
	fmt.Printf("Event:     %s\n", resp.Event)
	if resp.DeclinedReason != "" {
		fmt.Printf("Declined:  %s\n", resp.DeclinedReason)
	}
	if resp.Event.Terminal() {
		fmt.Println("The request has reached a terminal state.")
	}
}
