// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package lib embeds the shipped word corpus and positional frequency
// tables so first-run setup can seed the user's data directory without a
// separate download step.
package lib

import "embed"

//go:embed words.txt frequency/*.txt
var Files embed.FS
