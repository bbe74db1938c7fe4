package imap

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emersion/go-imap"
	imapclient "github.com/emersion/go-imap/client"
	"github.com/jhillyerd/enmime"

	"possales/internal"
	"possales/internal/config"
)

// Connector treats a mailbox as a file source: every xlsx attachment on an
// unseen message is a pending report. Marking a report processed flags its
// message seen, which removes all of that message's attachments from the
// pending set at once.
type Connector struct {
	host     string
	port     int
	secure   bool
	user     string
	password string
	mailbox  string
	fetchMax int

	// Attachment bytes and owning message UIDs, cached per ListPending.
	contents map[string][]byte
	uids     map[string]uint32
}

func NewConnector(cfg config.Config) (*Connector, error) {
	if err := cfg.Require("IMAP_HOST", cfg.IMAPHost); err != nil {
		return nil, err
	}
	if err := cfg.Require("IMAP_USER", cfg.IMAPUser); err != nil {
		return nil, err
	}
	if err := cfg.Require("IMAP_PASSWORD", cfg.IMAPPassword); err != nil {
		return nil, err
	}

	return &Connector{
		host:     cfg.IMAPHost,
		port:     cfg.IMAPPort,
		secure:   cfg.IMAPSecure,
		user:     cfg.IMAPUser,
		password: cfg.IMAPPassword,
		mailbox:  cfg.IMAPMailbox,
		fetchMax: cfg.FetchMax,
		contents: map[string][]byte{},
		uids:     map[string]uint32{},
	}, nil
}

func (c *Connector) Provider() string { return "imap" }

func (c *Connector) ListPending() ([]internal.SourceFile, error) {
	client, err := c.dial()
	if err != nil {
		return nil, err
	}
	defer client.Logout()

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	ids, err := client.Search(criteria)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > c.fetchMax {
		ids = ids[len(ids)-c.fetchMax:]
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{imap.FetchUid, section.FetchItem()}
	messages := make(chan *imap.Message, len(ids))
	fetchDone := make(chan error, 1)
	go func() { fetchDone <- client.Fetch(seqset, items, messages) }()

	c.contents = map[string][]byte{}
	c.uids = map[string]uint32{}

	out := []internal.SourceFile{}
	for msg := range messages {
		if msg == nil {
			continue
		}
		body := msg.GetBody(section)
		if body == nil {
			continue
		}
		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, err
		}

		env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
		if err != nil {
			continue
		}
		for _, att := range env.Attachments {
			filename := strings.TrimSpace(att.FileName)
			lower := strings.ToLower(filename)
			if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xls") {
				continue
			}
			id := fmt.Sprintf("%d:%s", msg.Uid, filename)
			c.contents[id] = att.Content
			c.uids[id] = msg.Uid
			out = append(out, internal.SourceFile{ID: id, Name: filename})
		}
	}

	if err := <-fetchDone; err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Connector) ReadContent(id string) ([]byte, error) {
	content, ok := c.contents[id]
	if !ok {
		return nil, fmt.Errorf("unknown report id: %s", id)
	}
	return content, nil
}

func (c *Connector) MarkProcessed(id string) error {
	uid, ok := c.uids[id]
	if !ok {
		// Tolerate ids from a previous listing that survived a restart.
		parsed, err := parseUID(id)
		if err != nil {
			return err
		}
		uid = parsed
	}

	client, err := c.dial()
	if err != nil {
		return err
	}
	defer client.Logout()

	seqset := new(imap.SeqSet)
	seqset.AddNum(uid)
	item := imap.FormatFlagsOp(imap.AddFlags, true)
	flags := []interface{}{imap.SeenFlag}
	return client.UidStore(seqset, item, flags, nil)
}

func (c *Connector) dial() (*imapclient.Client, error) {
	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	var client *imapclient.Client
	var err error
	if c.secure {
		client, err = imapclient.DialTLS(addr, &tls.Config{ServerName: c.host})
	} else {
		client, err = imapclient.Dial(addr)
	}
	if err != nil {
		return nil, err
	}

	if err := client.Login(c.user, c.password); err != nil {
		_ = client.Logout()
		return nil, err
	}
	if _, err := client.Select(c.mailbox, false); err != nil {
		_ = client.Logout()
		return nil, err
	}
	return client, nil
}

func parseUID(id string) (uint32, error) {
	raw, _, ok := strings.Cut(id, ":")
	if !ok {
		return 0, fmt.Errorf("malformed report id: %s", id)
	}
	uid, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed report id: %s", id)
	}
	return uint32(uid), nil
}
