// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	formatHex    = "hex"
	formatBase64 = "base64"
	formatBech32 = "bech32"
)

func formatDigest(digest []byte, format string, bech32Prefix string) (string, error) {
	switch format {
	case formatHex:
		return hex.EncodeToString(digest), nil
	case formatBase64:
		return base64.StdEncoding.EncodeToString(digest), nil
	case formatBech32:
		// Convert data to base32 and encode as bech32
		convData, err := bech32.ConvertBits(digest, 8, 5, true)
		if err != nil {
			return "", err
		}
		encoded, err := bech32.Encode(bech32Prefix, convData)
		if err != nil {
			return "", err
		}
		return encoded, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", format)
	}
}
