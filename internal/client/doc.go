// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and client services into a single process
// lifecycle: restore or establish a login session, then run the main loop
// until the user quits or logs out.
package client
