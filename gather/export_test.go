// SPDX-License-Identifier: MIT

package gather

// AssertNotInIndexColumns exposes the collision check to the external tests.
var AssertNotInIndexColumns = assertNotInIndexColumns
