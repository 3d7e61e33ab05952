// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The junctions command classifies candidate splice and fusion junctions
// held in a junction bundle and writes them in FASTA and summary formats.
package main

import (
	"context"
	"os"

	"github.com/labstack/gommon/log"
)

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
