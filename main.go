package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/sqlseed/sqlseed/seed"
	"github.com/urfave/cli"
	"io/ioutil"
	"log"
	"os"
	"time"
)

func checkConf(ctx *cli.Context) *seed.Config {
	file := ctx.String("c")
	log.Printf("[TRACE] got conf=%s\n", file)

	data, err := ioutil.ReadFile(file)
	seed.ExitIfError(err, -1, "can not read config=%s", file)

	conf, err := seed.ParseToml(string(data))
	seed.ExitIfError(err, -1, "can not parse TOML, config=%s", file)

	return conf
}

func checkDest(ctx *cli.Context, cnf *seed.Config) *seed.DataSource {
	flag := ctx.String("d")
	seed.ExitIfTrue(len(flag) == 0, -2, "no dest db selected")

	ds, ok := cnf.DataSource[flag]
	seed.ExitIfTrue(!ok, -2, "db not found in config, dest=%s", flag)
	log.Printf("[TRACE] got dest db=%s\n", flag)

	if len(ds.Pass) == 0 {
		ds.Pass = os.Getenv(seed.EnvPass)
		log.Printf("[TRACE] empty pass, use env %s\n", seed.EnvPass)
	}

	return &ds
}

func checkSqls(ctx *cli.Context) (files []seed.FileEntity) {
	seed.ExitIfTrue(ctx.NArg() == 0, -3, "must give a path or file for args")

	flag := ctx.StringSlice("x")
	files, err := seed.FileWalker(ctx.Args(), flag)
	seed.ExitIfError(err, -3, "failed to read file")
	seed.ExitIfTrue(len(files) < 1, -3, "can not find any SQLs")

	return
}

func checkRisk(ctx *cli.Context) bool {
	agr := ctx.Bool("agree")
	return agr
}

// command //
func load(ctx *cli.Context) (err error) {
	conf := checkConf(ctx)
	dest := checkDest(ctx, conf)
	risk := checkRisk(ctx)
	sqls := checkSqls(ctx)
	return seed.Load(&conf.Preference, dest, sqls, conf.VerifyQury, risk)
}

func verify(ctx *cli.Context) (err error) {
	conf := checkConf(ctx)
	dest := checkDest(ctx, conf)
	return seed.Verify(&conf.Preference, dest, conf.VerifyQury)
}

func split(ctx *cli.Context) error {
	conf := checkConf(ctx)
	files := checkSqls(ctx)

	for i := range files {
		sqls := seed.SplitSqls(&conf.Preference, &files[i])
		fmt.Printf("\n==== file=%s, statements=%d ====\n", files[i].Path, len(sqls))
		for j, s := range sqls {
			fmt.Printf("%3d, line=%d\n%s\n", j+1, s.Head, s.Text)
		}
	}
	return nil
}

// cli //
func main() {

	if err := godotenv.Load(); err == nil {
		log.Printf("[TRACE] loaded .env\n")
	}

	app := cli.NewApp()

	app.Author = "github.com/sqlseed"
	app.Version = "0.4.0"
	app.Compiled = time.Now()

	app.Name = "sqlseed"
	app.Usage = app.Name + " command args"
	app.Description = `import line-oriented SQL scripts into MySQL, one statement at a time

		statements end with ';' at end of line
		'#' and '--' lines are comments and get dropped
		a failed statement is reported and skipped, the run goes on
`

	//
	confFlag := &cli.StringFlag{
		Name:  "c",
		Usage: "the main (C)onfig",
		Value: "sqlseed.toml",
	}

	destFlag := &cli.StringFlag{
		Name:  "d",
		Usage: "the (D)estination db in config",
	}

	riskFlag := &cli.BoolFlag{
		Name:  "agree",
		Usage: "really execute on the db. without it statements are printed only",
	}

	sufxFlag := &cli.StringSliceFlag{
		Name:  "x",
		Usage: "the Suffi(X) (string) of SQL files. eg \".sql\"",
	}

	//
	app.Commands = []cli.Command{
		{
			Name:      "load",
			Usage:     "import SQL files into the db, then verify",
			ArgsUsage: "some files or paths of SQLs",
			Flags: []cli.Flag{
				confFlag,
				sufxFlag,
				destFlag,
				riskFlag,
			},
			Action: load,
		},
		{
			Name:  "verify",
			Usage: "run only the verify queries from config",
			Flags: []cli.Flag{
				confFlag,
				destFlag,
			},
			Action: verify,
		},
		{
			Name:      "split",
			Usage:     "print the parsed statements, no db needed",
			ArgsUsage: "some files or paths of SQLs",
			Flags: []cli.Flag{
				confFlag,
				sufxFlag,
			},
			Action: split,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
