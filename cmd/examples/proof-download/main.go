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
	"io"
	"log"
	"os"
	"time"

	"github.com/shuftipro/sdk-go/pkg/client"
	"github.com/shuftipro/sdk-go/pkg/credentials"
	"github.com/shuftipro/sdk-go/pkg/protocol"
)

func main() {
	if len(os.Args) < 4 {
		log.Fatalf("usage: %s <proof-url> <access-token> <output-file>", os.Args[0])
	}
	proofURL, accessToken, outputFile := os.Args[1], os.Args[2], os.Args[3]

	creds := credentials.Credentials{
		ClientID:  os.Getenv("SHUFTIPRO_CLIENT_ID"),
		SecretKey: os.Getenv("SHUFTIPRO_SECRET_KEY"),
	}

	c, err := client.NewClient(creds)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	proof, err := c.GetProof(ctx, proofURL, &protocol.ProofRequest{AccessToken: accessToken})
	if err != nil {
		log.Fatalf("Proof download failed: %v", err)
	}
	defer proof.Close()

	out, err := os.Create(outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer out.Close()

	n, err := io.Copy(out, proof.Content)
	if err != nil {
		log.Fatalf("Failed to write proof file: %v", err)
	}

	fmt.Printf("Wrote %d bytes (%s) to %s\n", n, proof.ContentType, outputFile)
}
