package events

import "github.com/snowpeak/skistation/internal/models"

// OnRegistrationCreated is called after a registration has been saved.
// services will call this if it's set.
var OnRegistrationCreated func(reg models.Registration)
