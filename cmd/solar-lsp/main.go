// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/jmcph4/solar/internal/lsp"
)

const lsName = "solar" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	solarHandler := lsp.NewSolarHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:            solarHandler.Initialize,
		Initialized:           solarHandler.Initialized,
		Shutdown:              solarHandler.Shutdown,
		SetTrace:              solarHandler.SetTrace,
		TextDocumentDidOpen:   solarHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  solarHandler.TextDocumentDidClose,
		TextDocumentDidChange: solarHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Solar LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Solar LSP server:", err)
		os.Exit(1)
	}
}
