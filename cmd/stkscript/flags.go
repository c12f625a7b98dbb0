package main

const (
	homeFlag       = "home"
	forceFlag      = "force"
	configFileFlag = "config"
)
