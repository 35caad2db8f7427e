// Package oteladapters provides OpenTelemetry adapters for the interception
// layer's observer and logging collaborator interfaces. These adapters enable
// plug-and-play observability for users who do not want to implement the
// interfaces themselves.
package oteladapters
