// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/gosl/chk"

// Err builds a formatted error, matching the rest of the module's
// convention for surfacing fatal errors with context (§7)
func Err(msg string, args ...interface{}) error { return chk.Err(msg, args...) }
