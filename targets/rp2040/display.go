//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

// initDisplay brings up an SSD1306 on I2C0 for an on-board preview
func initDisplay() (*ssd1306.Device, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Address: 0x3C,
		Width:   128,
		Height:  64,
	})
	return &dev, nil
}
