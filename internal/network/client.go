package network

import (
	"math/rand"
	"net/url"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const requestTimeoutSeconds = 30

// Client wraps a browser-profile HTTP client with user-agent rotation and
// optional proxy rotation.
type Client struct {
	http    tls_client.HttpClient
	rotator *Rotator
	agents  []string
	rand    *rand.Rand
}

func NewClient(rotator *Rotator) (*Client, error) {
	jar, _ := fhttpcookiejar.New(nil)

	client, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(requestTimeoutSeconds),
		tls_client.WithCookieJar(jar),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:    client,
		rotator: rotator,
		agents:  append([]string{}, userAgents...),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	proxy := c.nextProxy()
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.agents[c.rand.Intn(len(c.agents))])
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if proxy != nil {
		c.rotator.Report(proxy, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) nextProxy() *url.URL {
	if c.rotator == nil {
		return nil
	}
	proxy, err := c.rotator.Next()
	if err != nil || proxy == nil {
		return nil
	}
	_ = c.http.SetProxy(proxy.String())
	return proxy
}
