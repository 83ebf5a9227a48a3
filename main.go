// main is the entry point for the pickscore CLI.
package main

import (
	"os"

	"github.com/huangsam/pickscore/cmd"
	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/internal/store"
)

func main() {
	cmd.SetStoreManager(store.Stores)

	err := cmd.Execute()
	store.CloseStores()
	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
