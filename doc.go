// iplookup resolves geolocation data for a list of IP addresses with
// ipinfo.io.
//
// It looks for a file named like IPList.txt or iplist.txt (any case,
// any suffix before .txt) in a directory of the binary, reads one
// address per line and queries ipinfo.io for each of them, one by one.
// Blank lines and lines with numbers only are skipped: these are
// indexes left by previous exports.
//
// Results are printed to stdout and saved into IPLookupResults.json in
// a current working directory:
//
//	{
//	    "1. 8.8.8.8": {
//	        "IP": "8.8.8.8",
//	        "City": "Mountain View",
//	        ...
//	    },
//	    "2. 10.0.0.1": {
//	        "Error": "..."
//	    }
//	}
//
// Access token is taken from IPINFO_TOKEN environment variable, .env
// file is loaded if present.
package main
