// internal/models/blog.go
package models

// BlogPost is editorial content shipped with the binary.
type BlogPost struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Author   string   `json:"author" yaml:"author"`
	Date     string   `json:"date" yaml:"date"`
	Category string   `json:"category" yaml:"category"`
	ReadTime string   `json:"read_time" yaml:"read_time"`
	Image    string   `json:"image" yaml:"image"`
	Tags     []string `json:"tags" yaml:"tags"`
	Featured bool     `json:"featured" yaml:"featured"`
	Content  string   `json:"-" yaml:"content"`
}

func (p BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
