package domain

import "strings"

// EffectiveChannel returns the trimmed override when it is non-blank, otherwise defaultChannel.
func EffectiveChannel(defaultChannel string, override *string) string {
	if override == nil {
		return defaultChannel
	}
	if trimmed := strings.TrimSpace(*override); trimmed != "" {
		return trimmed
	}
	return defaultChannel
}
