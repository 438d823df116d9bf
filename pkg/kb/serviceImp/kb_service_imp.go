package serviceImp

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"agrisense/entities"
	"agrisense/pkg/kb/repository"
)

const maxPageBytes = 1500000

type Svc struct {
	r     repository.KBRepository
	httpc *http.Client
}

func New(r repository.KBRepository) *Svc {
	return &Svc{r: r, httpc: &http.Client{Timeout: 20 * time.Second}}
}

func (s *Svc) IngestText(title, tags, text, sourceURL string) (*entities.KBArticle, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is required")
	}
	a := &entities.KBArticle{Title: title, Tags: tags, Text: text, SourceURL: sourceURL}
	if err := s.r.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Svc) IngestURL(url, tags string) (*entities.KBArticle, error) {
	text, title, err := s.fetchMainText(url)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = url
	}
	return s.IngestText(title, tags, text, url)
}

func (s *Svc) fetchMainText(u string) (string, string, error) {
	resp, err := s.httpc.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > maxPageBytes {
		return "", "", fmt.Errorf("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	limited := io.LimitedReader{R: resp.Body, N: maxPageBytes}
	if strings.Contains(ct, "text/plain") {
		b, err := io.ReadAll(&limited)
		if err != nil {
			return "", "", err
		}
		text := string(b)
		return text, firstLine(text), nil
	}

	doc, err := goquery.NewDocumentFromReader(&limited)
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	// main/article content if present, whole page otherwise
	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return cleanWhitespace(strings.Join(parts, "\n")), title, nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func firstLine(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}

// Search scores articles by query-term presence, title hits weighted over
// body hits. No embeddings; keyword matching is enough for the article pool
// a single deployment carries.
func (s *Svc) Search(query string, k int) ([]entities.KBArticle, error) {
	terms := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(terms) == 0 || k <= 0 {
		return nil, nil
	}
	articles, err := s.r.All()
	if err != nil {
		return nil, err
	}

	type scored struct {
		a  entities.KBArticle
		sc int
	}
	var candidates []scored
	for _, a := range articles {
		title := strings.ToLower(a.Title)
		body := strings.ToLower(a.Text)
		tags := strings.ToLower(a.Tags)
		sc := 0
		for _, t := range terms {
			if strings.Contains(title, t) {
				sc += 3
			}
			if strings.Contains(tags, t) {
				sc += 2
			}
			if strings.Contains(body, t) {
				sc++
			}
		}
		if sc > 0 {
			candidates = append(candidates, scored{a, sc})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].sc > candidates[j].sc })

	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]entities.KBArticle, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, candidates[i].a)
	}
	return out, nil
}

func (s *Svc) Suggest(query string, k int) ([]entities.ArticleRef, error) {
	articles, err := s.Search(query, k)
	if err != nil {
		return nil, err
	}
	refs := make([]entities.ArticleRef, 0, len(articles))
	for _, a := range articles {
		refs = append(refs, entities.ArticleRef{Title: a.Title, URL: a.SourceURL})
	}
	return refs, nil
}

func (s *Svc) List() ([]entities.KBArticle, error) { return s.r.List() }
