//go:build windows

package catalog

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// Undocumented but stable since Vista; this is what the Sound control
// panel itself uses to change the default endpoint.
var (
	clsidPolicyConfigClient = ole.NewGUID("{870af99c-171d-4f9e-af0d-e63df40c2bc9}")
	iidIPolicyConfig        = ole.NewGUID("{f8679f50-850a-41cf-9c72-430f290290c8}")
)

// ERole values.
const (
	roleConsole    uint32 = 0
	roleMultimedia uint32 = 1
)

const hrElementNotFound = 0x80070490

type policyConfig struct {
	ole.IUnknown
}

type policyConfigVtbl struct {
	ole.IUnknownVtbl
	GetMixFormat          uintptr
	GetDeviceFormat       uintptr
	ResetDeviceFormat     uintptr
	SetDeviceFormat       uintptr
	GetProcessingPeriod   uintptr
	SetProcessingPeriod   uintptr
	GetShareMode          uintptr
	SetShareMode          uintptr
	GetPropertyValue      uintptr
	SetPropertyValue      uintptr
	SetDefaultEndpoint    uintptr
	SetEndpointVisibility uintptr
}

func (pc *policyConfig) vtbl() *policyConfigVtbl {
	return (*policyConfigVtbl)(unsafe.Pointer(pc.RawVTable))
}

func (pc *policyConfig) setDefaultEndpoint(deviceID *uint16, role uint32) error {
	hr, _, _ := syscall.SyscallN(
		pc.vtbl().SetDefaultEndpoint,
		uintptr(unsafe.Pointer(pc)),
		uintptr(unsafe.Pointer(deviceID)),
		uintptr(role),
	)
	if hr != 0 {
		if uint32(hr) == hrElementNotFound {
			return ErrNotFound
		}
		return ole.NewError(hr)
	}
	return nil
}

// SetDefault assigns the endpoint as the Windows default for both the
// console and multimedia roles, so every application follows the switch.
func (s *System) SetDefault(ep Endpoint) error {
	// S_FALSE (already initialized) is fine here.
	_ = ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)
	defer ole.CoUninitialize()

	unk, err := ole.CreateInstance(clsidPolicyConfigClient, iidIPolicyConfig)
	if err != nil {
		return fmt.Errorf("failed to create PolicyConfig instance: %w", err)
	}
	pc := (*policyConfig)(unsafe.Pointer(unk))
	defer pc.Release()

	id, err := syscall.UTF16PtrFromString(ep.ID)
	if err != nil {
		return fmt.Errorf("invalid endpoint id %q: %w", ep.ID, err)
	}

	for _, role := range []uint32{roleConsole, roleMultimedia} {
		if err := pc.setDefaultEndpoint(id, role); err != nil {
			return fmt.Errorf("SetDefaultEndpoint(%s, role %d): %w", ep.FriendlyName, role, err)
		}
	}
	return nil
}
