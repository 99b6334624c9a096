package testutil

import (
	"net"
	"testing"

	"github.com/miekg/dns"
)

// NewDNSServer starts an in-process nameserver on 127.0.0.1, serving both UDP and TCP on the same port. It's shut down
// when the test completes. The returned value is the host:port to query.
func NewDNSServer(t testing.TB, handler dns.Handler) string {
	t.Helper()

	var (
		l   net.Listener
		pc  net.PacketConn
		err error
	)

	// The UDP port picked for the TCP listener might be taken, retry a few times before giving up
	for attempt := 0; attempt < 5; attempt++ {
		l, err = net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("unable to listen on tcp: %s", err)
		}

		pc, err = net.ListenPacket("udp", l.Addr().String())
		if err == nil {
			break
		}

		_ = l.Close()
	}

	if err != nil {
		t.Fatalf("unable to listen on udp: %s", err)
	}

	udp := startServer(t, &dns.Server{PacketConn: pc, Handler: handler})
	tcp := startServer(t, &dns.Server{Listener: l, Handler: handler})

	t.Cleanup(func() {
		_ = udp.Shutdown()
		_ = tcp.Shutdown()
	})

	return l.Addr().String()
}

func startServer(t testing.TB, srv *dns.Server) *dns.Server {
	t.Helper()

	started := make(chan struct{})
	srv.NotifyStartedFunc = func() {
		close(started)
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ActivateAndServe()
	}()

	select {
	case <-started:
	case err := <-errs:
		t.Fatalf("nameserver failed to start: %s", err)
	}

	return srv
}

// MX builds an MX resource record
func MX(name string, pref uint16, host string) *dns.MX {
	return &dns.MX{
		Hdr: dns.RR_Header{
			Name:   dns.Fqdn(name),
			Rrtype: dns.TypeMX,
			Class:  dns.ClassINET,
			Ttl:    300,
		},
		Preference: pref,
		Mx:         dns.Fqdn(host),
	}
}

// Zone is a static MX zone for tests. Names missing from every map yield NXDOMAIN.
type Zone struct {
	// MX maps a fully qualified name on its MX records, an empty slice produces an empty NOERROR answer
	MX map[string][]dns.RR

	// Rcode forces a response code for a fully qualified name
	Rcode map[string]int

	// Silent names are never answered, making the client time out
	Silent map[string]bool

	// TruncateUDP answers over UDP with the TC bit set and no records, forcing a retry over TCP
	TruncateUDP bool
}

func (z Zone) ServeDNS(w dns.ResponseWriter, req *dns.Msg) {
	if len(req.Question) == 0 {
		return
	}

	name := req.Question[0].Name
	if z.Silent[name] {
		return
	}

	m := new(dns.Msg)
	if rc, ok := z.Rcode[name]; ok {
		m.SetRcode(req, rc)
		_ = w.WriteMsg(m)
		return
	}

	rrs, ok := z.MX[name]
	if !ok {
		m.SetRcode(req, dns.RcodeNameError)
		_ = w.WriteMsg(m)
		return
	}

	m.SetReply(req)
	if z.TruncateUDP && w.RemoteAddr().Network() == "udp" {
		m.Truncated = true
		_ = w.WriteMsg(m)
		return
	}

	m.Answer = append(m.Answer, rrs...)
	_ = w.WriteMsg(m)
}
