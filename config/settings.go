// settings.go
package config

import "time"

// Defaults for every tunable. Flags, env and config file override these.
const (
	/**
	[[SCRAPER SETTINGS]]
	*/

	//Auction data site
	WowAuctionsBaseURL = "https://www.wowauctions.net"
	AuctionHousePath   = "/auctionHouse/%s/%s/%s/%s-%d" //server, realm, faction, slug, id
	NextDataSelector   = "script#__NEXT_DATA__"

	DefaultServer  = "turtle-wow"
	DefaultRealm   = "nordanaar"
	DefaultFaction = "alliance"

	//Web Agents
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

	RequestTimeout = 10 * time.Second
	RequestDelay   = 500 * time.Millisecond //Courtesy pause between item requests

	/**
	[[DETECTOR SETTINGS]]
	*/

	MinProfit               = 1000 //Copper (10s)
	MarketDiscountThreshold = 0.70 //Buyout must be at or below this fraction of avg price
	AuctionHouseCut         = 0.05 //Turtle WoW AH fee on resale

	/**
	[[REPORT SETTINGS]]
	*/

	ReportLimit    = 20
	StaleThreshold = 30 * time.Minute //Advisory only, never filters

	//Files
	ItemDatabaseFile = "items.json"
	OutputFile       = "arbitrage_candidates.json"

	//Env / config file
	EnvPrefix  = "WOWARB"
	ConfigName = "wowarb"
)
