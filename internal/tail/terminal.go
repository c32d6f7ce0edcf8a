/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package tail

import (
	"strings"

	"github.com/orien/stacktail/internal/aws"
)

// IsTerminal reports whether event closes the tracked stack's current operation:
// it must describe the stack itself and carry a _COMPLETE or _FAILED status.
// stackName may be a plain name or a stack ARN.
func IsTerminal(event aws.StackEvent, stackName string) bool {
	if !event.ResourceStatus.IsTerminal() {
		return false
	}
	if event.LogicalResourceId == stackName {
		return true
	}
	if strings.HasPrefix(stackName, "arn:") {
		return event.PhysicalResourceId == stackName || event.LogicalResourceId == nameFromStackID(stackName)
	}
	return false
}

// nameFromStackID extracts NAME from arn:aws:cloudformation:REGION:ACCOUNT:stack/NAME/UUID
func nameFromStackID(stackID string) string {
	_, resource, found := strings.Cut(stackID, ":stack/")
	if !found {
		return stackID
	}
	name, _, _ := strings.Cut(resource, "/")
	return name
}
