package schema

// DeskItem is one entry of the studio's content navigation.
type DeskItem struct {
	Title        string `json:"title" yaml:"title"`
	DocumentType string `json:"documentType" yaml:"documentType"`
}

type Studio struct {
	Name      string         `json:"name" yaml:"name"`
	Title     string         `json:"title" yaml:"title"`
	ProjectID string         `json:"projectId" yaml:"projectId"`
	Dataset   string         `json:"dataset" yaml:"dataset"`
	BasePath  string         `json:"basePath" yaml:"basePath"`
	Desk      []DeskItem     `json:"desk" yaml:"desk"`
	Plugins   []string       `json:"plugins" yaml:"plugins"`
	Types     []DocumentType `json:"types" yaml:"types"`
}

// NewStudio assembles the studio configuration for a project and dataset.
func NewStudio(projectID, dataset string) Studio {
	return Studio{
		Name:      "default",
		Title:     "RealEstate Website",
		ProjectID: projectID,
		Dataset:   dataset,
		BasePath:  "/studio",
		Desk: []DeskItem{
			{Title: "Properties", DocumentType: Property.Name},
			{Title: "Agents", DocumentType: Agent.Name},
			{Title: "Testimonials", DocumentType: Testimonial.Name},
		},
		Plugins: []string{"structureTool", "visionTool"},
		Types:   Types,
	}
}
