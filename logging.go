/*
NAME
  logging.go

DESCRIPTION
  logging.go declares the package-level logging sink threaded through
  every reader, writer and operator validator.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package clf

import "github.com/ausocean/utils/logging"

// Log is the package-wide logging sink. It is nil until the embedding
// application sets it; every call site nil-checks before logging so
// the core never requires a logger to function, only to report
// warnings.
var Log logging.Logger
