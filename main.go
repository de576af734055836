// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/stockwise/registry-service/cmd"

func main() {
	cmd.Execute()
}
