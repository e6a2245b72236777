package models

type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	OGImage         string   `json:"ogImage,omitempty"`
}

type Author struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// PostMeta — не зависящие от языка атрибуты статьи (без текста).
type PostMeta struct {
	ID               string            `json:"id"`
	SlugTranslations map[string]string `json:"slugTranslations"`
	PublishedAt      Date              `json:"publishedAt"`
	UpdatedAt        *Date             `json:"updatedAt,omitempty"`
	ReadingTime      int               `json:"readingTime"`
	Category         string            `json:"category"`
	Tags             []string          `json:"tags"`
	Image            Image             `json:"image"`
	SEO              SEO               `json:"seo"`
	Featured         bool              `json:"featured"`
	Author           Author            `json:"author"`
	Cluster          string            `json:"cluster,omitempty"`
	RelatedPosts     []string          `json:"relatedPosts,omitempty"`
}

// SlugFor возвращает slug для языка или slug языка по умолчанию.
func (p *PostMeta) SlugFor(locale, fallback string) string {
	if s := p.SlugTranslations[locale]; s != "" {
		return s
	}
	return p.SlugTranslations[fallback]
}

func (p *PostMeta) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// LocalizedContent — текст статьи на одном языке. Все три поля обязательны.
type LocalizedContent struct {
	Title   string `json:"title"   yaml:"title"`
	Excerpt string `json:"excerpt" yaml:"excerpt"`
	Content string `json:"content" yaml:"-"`
}

func (c *LocalizedContent) Complete() bool {
	return c != nil && c.Title != "" && c.Excerpt != "" && c.Content != ""
}

// FullPost — метаданные + текст на запрошенном (или запасном) языке.
type FullPost struct {
	PostMeta
	LocalizedContent

	Slug            string     `json:"slug"`
	RequestedLocale string     `json:"requestedLocale"`
	ResolvedLocale  string     `json:"resolvedLocale"`
	FallbackUsed    bool       `json:"fallbackUsed"`
	Related         []PostMeta `json:"related,omitempty"`
}
