package visits

type SiteId string

const DefaultSiteId = SiteId("default")

func (id SiteId) String() string {
	return string(id)
}

type Count int64

// Counter is the body returned to callers after a visit has been counted.
type Counter struct {
	Count Count `json:"count"`
}
