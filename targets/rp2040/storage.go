//go:build rp2040

package main

import (
	"io"
	"machine"
	"os"

	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/sdcard"
	"tinygo.org/x/tinyfs/fatfs"

	"velo/core"
)

// initEEPROM sets up the AT24C32 backing the config store. The device
// implements io.ReaderAt and io.WriterAt over the I2C bus, which is
// exactly the store.Backend contract.
func initEEPROM() *at24cx.Device {
	dev := at24cx.New(machine.I2C0)
	dev.Configure(at24cx.Config{})
	return &dev
}

// cardMedium adapts the FAT filesystem on the SD card to
// core.CardMedium.
type cardMedium struct {
	fs *fatfs.FATFS
}

// initCard mounts the SD card. A missing or unreadable card is a
// normal condition at this point; the device decides downstream
// whether that is degraded (record already committed) or fatal
// (first boot).
func initCard() core.CardMedium {
	err := machine.SPI0.Configure(machine.SPIConfig{
		SCK:       sdSCK,
		SDO:       sdTX,
		SDI:       sdRX,
		Frequency: 8 * machine.MHz,
	})
	if err != nil {
		println("velo: spi setup failed:", err.Error())
		return nil
	}

	sd := sdcard.New(machine.SPI0, sdSCK, sdTX, sdRX, sdCS)
	if err := sd.Configure(); err != nil {
		println("velo: sd init failed:", err.Error())
		return nil
	}

	fs := fatfs.New(&sd)
	fs.Configure(&fatfs.Config{SectorSize: 512})
	if err := fs.Mount(); err != nil {
		println("velo: fat mount failed:", err.Error())
		return nil
	}
	return &cardMedium{fs: fs}
}

func (c *cardMedium) Open(name string) (io.ReadCloser, error) {
	return c.fs.OpenFile(name, os.O_RDONLY)
}

// Sync unmounts the filesystem so the card can be pulled safely.
func (c *cardMedium) Sync() error {
	return c.fs.Unmount()
}
