package feedclient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
)

// Publication 服务端内容投影；Believed 为 nil 表示调用方未表态
type Publication struct {
	ID               uint64 `json:"id"`
	URL              string `json:"url"`
	Platform         string `json:"platform"`
	BelievedCount    int    `json:"believed_count"`
	DisbelievedCount int    `json:"disbelieved_count"`
	CreatedAt        string `json:"created_at"`
	Believed         *bool  `json:"believed"`
}

// Selection 分页内容列表
type Selection struct {
	Items []*Publication `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Pages int            `json:"pages"`
}

type envelope struct {
	Code   int             `json:"code"`
	Detail string          `json:"detail"`
	Data   json.RawMessage `json:"data"`
}

// Client 内容投票服务的 HTTP 客户端
type Client struct {
	http *resty.Client
}

type Option func(*Client)

// WithToken 设置 Bearer 凭证
func WithToken(token string) Option {
	return func(c *Client) {
		c.http.SetAuthToken(token)
	}
}

// WithLocale 设置失败说明的语言
func WithLocale(locale string) Option {
	return func(c *Client) {
		c.http.SetHeader("Accept-Language", locale)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// CreatePublication 提交 URL 登记内容，平台由服务端按主机名识别
func (c *Client) CreatePublication(ctx context.Context, url string) (*Publication, error) {
	var out Publication
	err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(map[string]string{"url": url}).Post("/api/publications")
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SelectPublications 拉取分页内容列表，page/size 传 0 表示使用服务端缺省值
func (c *Client) SelectPublications(ctx context.Context, page, size int) (*Selection, error) {
	var out Selection
	err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("size", strconv.Itoa(size)).
			Get("/api/publications")
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CastVote 对内容表态；重复调用会原地改写之前的表态
func (c *Client) CastVote(ctx context.Context, publicationID uint64, believed *bool) error {
	return c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetBody(map[string]*bool{"believed": believed}).
			Post(fmt.Sprintf("/api/publications/%d/vote", publicationID))
	}, nil)
}

func (c *Client) do(ctx context.Context, call func(*resty.Request) (*resty.Response, error), out interface{}) error {
	var env envelope
	resp, err := call(c.http.R().SetContext(ctx).SetResult(&env).SetError(&env))
	if err != nil {
		return err
	}
	if env.Code == 0 {
		return fmt.Errorf("feedclient: unexpected response status=%d body=%s", resp.StatusCode(), resp.String())
	}
	if env.Detail != "" {
		return &APIError{Code: env.Code, Detail: env.Detail}
	}
	if out != nil && len(env.Data) > 0 {
		if err = json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("feedclient: decode response data: %w", err)
		}
	}
	return nil
}
