package adapter

import "time"

// Clock supplies the current time to use cases. Date comparisons such as the
// is_future derivation never read the system clock inline; they go through
// this interface so tests can pin "today".
type Clock interface {
	Now() time.Time
}
