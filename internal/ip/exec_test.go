package ip

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/dynners/internal/ip/mock_ip"
	"github.com/qdm12/dynners/internal/ipversion"
	"github.com/stretchr/testify/assert"
)

func Test_execSource_Resolve(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		version    ipversion.IPVersion
		stdout     []byte
		runErr     error
		address    netip.Addr
		errWrapped error
		errMessage string
	}{
		"run_error": {
			version:    ipversion.IP4,
			runErr:     errTest,
			errWrapped: ErrExecution,
			errMessage: "unable to obtain IP from child process: test error",
		},
		"not_utf8": {
			version:    ipversion.IP4,
			stdout:     []byte{0xff, 0xfe},
			errWrapped: ErrExecution,
			errMessage: "unable to obtain IP from child process: output is not valid UTF-8",
		},
		"empty_output": {
			version:    ipversion.IP4,
			errWrapped: ErrAddressMalformed,
			errMessage: "unable to obtain IP from child process: " +
				`address is malformed: ParseAddr(""): unable to parse IP`,
		},
		"wrong_version": {
			version:    ipversion.IP6,
			stdout:     []byte("1.2.3.4\n"),
			errWrapped: ErrAddressVersion,
			errMessage: "unable to obtain IP from child process: " +
				"address is not of the expected IP version: 1.2.3.4 is not an ipv6 address",
		},
		"ipv4_with_whitespace": {
			version: ipversion.IP4,
			stdout:  []byte("  1.2.3.4\n"),
			address: netip.AddrFrom4([4]byte{1, 2, 3, 4}),
		},
		"ipv6": {
			version: ipversion.IP6,
			stdout:  []byte("2001:db8::1\n"),
			address: netip.MustParseAddr("2001:db8::1"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()
			commander := mock_ip.NewMockCommander(ctrl)
			commander.EXPECT().Run(ctx, "/bin/bash", "get-ip").
				Return(testCase.stdout, testCase.runErr)

			source := &execSource{
				version:   testCase.version,
				shell:     "/bin/bash",
				command:   "get-ip",
				commander: commander,
			}

			address, err := source.Resolve(ctx)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.address, address)
		})
	}
}
