// pkg/registry/schema.go
package registry

type Registry struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Agents      []Agent `json:"agents"`
}

type Agent struct {
	ID          string                 `json:"id"`
	DisplayName string                 `json:"displayName"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Version     string                 `json:"version"`
	TaskType    string                 `json:"taskType"`
	Endpoint    string                 `json:"endpoint"`
	InputSchema map[string]interface{} `json:"inputSchema"`
	ErrorCodes  []string               `json:"errorCodes"`
	Tags        []string               `json:"tags"`
}
