package main

import (
	"fmt"

	"github.com/logicossoftware/go-dong"
)

// slotFor maps a C slot number to a Slot without narrowing it first.
func slotFor(n int) (dong.Slot, error) {
	switch n {
	case int(dong.SlotImage):
		return dong.SlotImage, nil
	case int(dong.SlotAudio):
		return dong.SlotAudio, nil
	}
	return 0, fmt.Errorf("unknown slot %d", n)
}
