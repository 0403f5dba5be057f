//go:build chrono_local_offset

package chrono

import "time"

/*
LocalOffsetAt reports the host's UTC offset at the given instant.

The query reads process-global state (the TZ environment variable and
the OS timezone database). It is NOT safe to call concurrently with
code that mutates process environment variables; restrict use to
single-threaded startup paths, or inject the resulting [UtcOffset]
through a higher-level clock abstraction. No constructor in this
package calls it implicitly.
*/
func LocalOffsetAt(at OffsetDateTime) (UtcOffset, error) {
	_, off := time.Unix(at.UnixTimestamp(), 0).In(time.Local).Zone()
	return OffsetFromWholeSeconds(off)
}
