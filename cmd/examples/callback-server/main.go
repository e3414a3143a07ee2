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
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/shuftipro/sdk-go/pkg/protocol"
	"github.com/shuftipro/sdk-go/pkg/server"
)

func main() {
	secretKey := os.Getenv("SHUFTIPRO_SECRET_KEY")
	if secretKey == "" {
		log.Fatal("SHUFTIPRO_SECRET_KEY must be set")
	}

	addr := os.Getenv("CALLBACK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	middleware := server.NewCallbackMiddleware(secretKey)

	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cb protocol.StatusResponse
		if err := json.NewDecoder(r.Body).Decode(&cb); err != nil {
			http.Error(w, "bad callback body", http.StatusBadRequest)
			return
		}

		fmt.Printf("callback: reference=%s event=%s\n", cb.Reference, cb.Event)
		if cb.Event == protocol.EventVerificationDeclined {
			fmt.Printf("  declined: %s\n", cb.DeclinedReason)
		}

		w.WriteHeader(http.StatusOK)
	}))

	http.Handle("/shuftipro/callback", handler)

	fmt.Printf("Listening on %s for signed callbacks...\n", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
