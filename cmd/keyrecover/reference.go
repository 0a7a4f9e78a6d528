package main

// referenceBlob is the reference server key as it was shipped.
// It only carries the deobf.ActiveLen leading bytes, so it's always extended before use.
const referenceBlob = "47FF1E97C3C79C5B26AACF464EC7034B4CE4FFAD21BA29F25D0C7C65BE244E7E" +
	"32E0BA1D6C65F0679C9C48E155BA02D577FED286D314E70206770663DE9773AC" +
	"DCE07397161506779753E7141054D2FE67C002BA40EC489CAF52F06555A7BAE0" +
	"13FD4E240AA67C0CFBAF29BA1DE8FFE4885703C74EB4CFAABA349CC73AFA1EFF"
