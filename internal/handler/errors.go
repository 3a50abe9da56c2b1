// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned when the configured addresses leave
// nothing to serve.
var errNoHandlersAreCreated = errors.New("no handlers are created")
