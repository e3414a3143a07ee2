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
	fmt.Println("Shufti Pro SDK - Document Verification Example")
	fmt.Println("==============================================")

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

	ref := protocol.NewReference()
	fmt.Printf("\n1. Submitting verification request %s...\n", ref)

	resp, err := c.Verify(ctx, &protocol.VerificationRequest{
		Reference:        ref,
		Country:          "GB",
		Language:         "EN",
		CallbackURL:      os.Getenv("SHUFTIPRO_CALLBACK_URL"),
		VerificationMode: protocol.VerificationModeAny,
		Document: &protocol.DocumentService{
			SupportedTypes: []string{"passport", "id_card", "driving_license"},
		},
		Face: &protocol.FaceService{},
	})
	if err != nil {
		log.Fatalf("Verification request failed: %v", err)
	}

	fmt.Printf("\n2. Service answered with event %q\n", resp.Event)
	if resp.Error != nil {
		log.Fatalf("Service reported an error: %s", resp.Error.Message)
	}

	if resp.VerificationURL != "" {
		fmt.Printf("\n3. Send the end user to:\n   %s\n", resp.VerificationURL)
	}

	fmt.Println("\nDone. Track progress with the status-check example.")
}
