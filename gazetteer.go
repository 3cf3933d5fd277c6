package textlens

import (
	"sort"
	"strings"
)

// A gazetteer matches known multi-word names against a token stream.
// Entries are case-sensitive and keyed by their first word.
type gazetteer struct {
	byFirst map[string][][]string
}

func newGazetteer(names string) *gazetteer {
	g := &gazetteer{byFirst: make(map[string][][]string)}
	for _, line := range strings.Split(names, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		g.byFirst[words[0]] = append(g.byFirst[words[0]], words)
	}
	// Longest entries first so "New York City" wins over "New York".
	for _, entries := range g.byFirst {
		sort.SliceStable(entries, func(i, j int) bool {
			return len(entries[i]) > len(entries[j])
		})
	}
	return g
}

// match returns how many tokens starting at i form a known name, or 0.
func (g *gazetteer) match(tokens []Token, i int) int {
	for _, entry := range g.byFirst[tokens[i].Word] {
		if i+len(entry) > len(tokens) {
			continue
		}
		ok := true
		for k, w := range entry {
			if tokens[i+k].Word != w {
				ok = false
				break
			}
		}
		if ok {
			return len(entry)
		}
	}
	return 0
}

func (g *gazetteer) contains(word string) bool {
	for _, entry := range g.byFirst[word] {
		if len(entry) == 1 {
			return true
		}
	}
	return false
}

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

var personTitles = wordSet(`Mr. Mr Mrs. Mrs Ms. Ms Miss Dr. Dr Prof. Professor
	Sir Dame Lord Lady Madam President Senator Sen. Governor Gov. Rep.
	Representative Mayor Judge Justice General Gen. Captain Capt. Colonel Col.
	Lieutenant Lt. Sergeant Sgt. Officer Detective Father Sister Brother Rev.
	Reverend Rabbi Imam Pope King Queen Prince Princess CEO Chancellor`)

var orgSuffixes = wordSet(`Inc. Inc Incorporated Corp. Corp Corporation Ltd. Ltd
	Limited LLC LLP PLC plc Co. Company Companies Group Holdings Partners
	Technologies Systems Labs Laboratories Industries Enterprises Solutions
	Bank Airlines Motors Pharmaceuticals Associates Foundation Institute
	Association Society Agency Council Committee Commission Department Ministry
	University College School Hospital Museum Club Party Union Network Press
	Studios Records Media News Times Post Journal AG GmbH SA NV`)

// Heads that take an "of" complement: "University of Chicago".
var orgOfHeads = wordSet(`University College Bank Institute Department Ministry
	Museum School Academy Office Board Church Federation League`)

var organizationGazetteer = newGazetteer(`Google
Microsoft
Amazon
Facebook
Meta
Netflix
Tesla
IBM
Intel
Nvidia
NVIDIA
Oracle
Samsung
Sony
Toyota
Honda
Twitter
OpenAI
Anthropic
Reuters
BBC
CNN
NASA
FBI
CIA
NATO
UNESCO
UNICEF
WHO
FIFA
Harvard
MIT
Stanford
Yale
Princeton
Walmart
Boeing
Airbus
Siemens
Volkswagen
Nike
Adidas
Spotify
Uber
Airbnb
PayPal
eBay
Pfizer
Goldman Sachs
Morgan Stanley
JPMorgan Chase
Wells Fargo
General Motors
General Electric
United Nations
European Union
World Bank
Red Cross
New York Times
Wall Street Journal
Washington Post
Federal Reserve
White House
Supreme Court
Congress
Parliament`)

var locationGazetteer = newGazetteer(`Africa
Antarctica
Asia
Australia
Europe
North America
South America
Latin America
Middle East
United States
United States of America
USA
U.S.
US
United Kingdom
UK
U.K.
Great Britain
England
Scotland
Wales
Ireland
Northern Ireland
Canada
Mexico
Brazil
Argentina
Chile
Peru
Colombia
Venezuela
France
Germany
Spain
Portugal
Italy
Netherlands
Belgium
Switzerland
Austria
Sweden
Norway
Denmark
Finland
Poland
Greece
Turkey
Russia
Ukraine
China
Japan
Korea
South Korea
North Korea
India
Pakistan
Bangladesh
Indonesia
Vietnam
Thailand
Philippines
Singapore
Malaysia
Egypt
Nigeria
Kenya
South Africa
Morocco
Israel
Iran
Iraq
Saudi Arabia
New Zealand
Alabama
Alaska
Arizona
Arkansas
California
Colorado
Connecticut
Delaware
Florida
Georgia
Hawaii
Idaho
Illinois
Indiana
Iowa
Kansas
Kentucky
Louisiana
Maine
Maryland
Massachusetts
Michigan
Minnesota
Mississippi
Missouri
Montana
Nebraska
Nevada
New Hampshire
New Jersey
New Mexico
New York
North Carolina
North Dakota
Ohio
Oklahoma
Oregon
Pennsylvania
Rhode Island
South Carolina
South Dakota
Tennessee
Texas
Utah
Vermont
Virginia
West Virginia
Washington
Wisconsin
Wyoming
New York City
Los Angeles
San Francisco
San Jose
San Diego
Cupertino
Mountain View
Palo Alto
Menlo Park
Redmond
Seattle
Portland
Chicago
Boston
Houston
Dallas
Austin
Miami
Atlanta
Denver
Phoenix
Philadelphia
Detroit
Las Vegas
Silicon Valley
Toronto
Vancouver
Montreal
London
Manchester
Edinburgh
Dublin
Paris
Lyon
Marseille
Berlin
Munich
Hamburg
Frankfurt
Madrid
Barcelona
Lisbon
Rome
Milan
Venice
Florence
Naples
Amsterdam
Rotterdam
Brussels
Geneva
Zurich
Vienna
Prague
Warsaw
Budapest
Stockholm
Oslo
Copenhagen
Helsinki
Athens
Istanbul
Moscow
Kyiv
Beijing
Shanghai
Hong Kong
Shenzhen
Tokyo
Osaka
Kyoto
Seoul
Delhi
New Delhi
Mumbai
Bangalore
Jakarta
Bangkok
Hanoi
Manila
Sydney
Melbourne
Cairo
Lagos
Nairobi
Johannesburg
Cape Town
Dubai
Jerusalem
Tel Aviv
Mexico City
Buenos Aires
Rio de Janeiro
Sao Paulo
Lima
Bogota`)

var firstNames = wordSet(`James John Robert Michael William David Richard Joseph
	Thomas Charles Christopher Daniel Matthew Anthony Mark Donald Steven Steve
	Paul Andrew Joshua Kenneth Kevin Brian George Timothy Tim Ronald Edward
	Jason Jeffrey Jeff Ryan Jacob Gary Nicholas Eric Jonathan Stephen Larry
	Justin Scott Brandon Benjamin Ben Samuel Sam Gregory Frank Alexander
	Patrick Raymond Jack Dennis Jerry Tyler Aaron Jose Adam Henry Nathan Douglas
	Zachary Peter Kyle Walter Ethan Jeremy Harold Keith Christian Roger Noah
	Gerald Carl Terry Sean Austin Arthur Lawrence Jesse Dylan Bryan Joe Jordan
	Billy Bruce Albert Willie Gabriel Logan Alan Juan Wayne Roy Ralph Randy
	Eugene Vincent Russell Elijah Louis Bobby Philip Johnny Bill Bob Tom Mike
	Elon Warren Barack Joe Satya Sundar Jensen Sergey Larry Mark Jack
	Mary Patricia Jennifer Linda Elizabeth Barbara Susan Jessica Sarah Karen
	Nancy Lisa Betty Margaret Sandra Ashley Kimberly Emily Donna Michelle Dorothy
	Carol Amanda Melissa Deborah Stephanie Rebecca Sharon Laura Cynthia Kathleen
	Amy Shirley Angela Helen Anna Brenda Pamela Nicole Emma Samantha Katherine
	Christine Debra Rachel Catherine Carolyn Janet Ruth Maria Heather Diane
	Virginia Julie Joyce Victoria Olivia Kelly Christina Lauren Joan Evelyn
	Judith Megan Cheryl Andrea Hannah Martha Jacqueline Frances Gloria Ann
	Teresa Kathryn Sara Janice Jean Alice Madison Doris Abigail Julia Judy Grace
	Denise Amber Marilyn Beverly Danielle Theresa Sophia Marie Diana Brittany
	Natalie Isabella Charlotte Rose Alexis Kayla Oprah Angela Hillary Kamala
	Taylor Ada Marie Grace Mohammed Muhammad Ahmed Ali Hans Pierre Jean Carlos
	Luis Miguel Juan Giovanni Marco Luca Yuki Hiroshi Wei Li Raj Priya`)
