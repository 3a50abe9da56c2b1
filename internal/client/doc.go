// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses the client commands, calls the gateway through the client
// services and prints the gateway responses as JSON.
package client
