package intake

import "time"

// Placeholder values returned until a real parser backs the use case.
var DefaultDeadline = time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC)

const DefaultPriority = PriorityMedium
