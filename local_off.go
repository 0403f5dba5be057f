//go:build !chrono_local_offset

package chrono

/*
LocalOffsetAt reports the host's UTC offset at the given instant.

Host offset queries read process-global state (the TZ environment
variable and the OS timezone database) and are therefore gated behind
the chrono_local_offset build tag; without it this function always
returns an error. No constructor in this package calls it implicitly.
*/
func LocalOffsetAt(_ OffsetDateTime) (UtcOffset, error) {
	return UtcOffset{}, errorLocalOffsetOff
}
